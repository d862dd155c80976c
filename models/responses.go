package models

// UsersResponse is the body of the list-users endpoint.
type UsersResponse struct {
	// Users holds every user known to the service, ordered by ID.
	Users []User `json:"users"`

	// Count is the number of entries in Users.
	Count int `json:"count"`
}

package domain

import "fmt"

var seedUsers = []struct {
	email, first, last string
}{
	{"george.bluth@reqres.in", "George", "Bluth"},
	{"janet.weaver@reqres.in", "Janet", "Weaver"},
	{"emma.wong@reqres.in", "Emma", "Wong"},
	{"eve.holt@reqres.in", "Eve", "Holt"},
	{"charles.morris@reqres.in", "Charles", "Morris"},
	{"tracey.ramos@reqres.in", "Tracey", "Ramos"},
	{"michael.lawson@reqres.in", "Michael", "Lawson"},
	{"lindsay.ferguson@reqres.in", "Lindsay", "Ferguson"},
	{"tobias.funke@reqres.in", "Tobias", "Funke"},
	{"byron.fields@reqres.in", "Byron", "Fields"},
	{"george.edwards@reqres.in", "George", "Edwards"},
	{"rachel.howell@reqres.in", "Rachel", "Howell"},
}

// SeedUsers returns a fresh copy of the twelve reqres demo users, IDs 1-12.
func SeedUsers() []*User {
	users := make([]*User, len(seedUsers))
	for i, s := range seedUsers {
		id := i + 1
		users[i] = &User{
			ID:        id,
			Email:     s.email,
			FirstName: s.first,
			LastName:  s.last,
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		}
	}
	return users
}

// Package endpoint holds the declarative side of a REST client: named request
// templates and the registry that maps symbolic names to them.
//
// A Template pairs an HTTP method with a path pattern containing ordered `{}`
// placeholders. Templates are values; filling a path never modifies the
// registered template, so one Registry can serve concurrent calls.
//
//	reg := endpoint.Registry{
//	    "get_post": {Method: "GET", Path: "/users/{}/posts/{}"},
//	}
//	tmpl, _ := reg.Lookup("get_post")
//	path, err := tmpl.Fill(42, 7) // "/users/42/posts/7"
package endpoint

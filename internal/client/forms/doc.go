// Package forms implements the client's input forms: recipe create/edit,
// login, registration, profile edit, comments and the search/filter panel.
//
// Each form keeps a local draft that is independent of the application
// state until it is submitted. Fields are validated with
// go-playground/validator and reported per field path ("title",
// "ingredients[0].amount", "steps[1].description") in one of three states:
// untouched, valid or invalid. Submit touches every field and refuses to
// produce a request while any field is invalid.
package forms

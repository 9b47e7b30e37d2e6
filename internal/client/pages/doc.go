// Package pages holds the views of the folio client. Each view is a
// router.Handler that writes plain text; forms read their input through a
// Prompter so the same pages run against a terminal or a test script.
//
// Routes registers every view on a router. The admin area and the comment
// form are protected by router.RequireAuth.
package pages

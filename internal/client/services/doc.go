// Package services contains the application services of the folio client:
// authentication on top of the session manager, the admin catalogs, the
// contact form and blog comments.
//
// Services validate input before touching the network and only change
// local state after the API call succeeded.
package services

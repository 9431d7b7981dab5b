// Package brand holds the logo concept catalog and the page-lifetime
// selection state every brand mark on the page reads from.
//
// A Controller owns the selected id. Display regions read it through
// Reader and learn about changes through Observer; only the controller
// writes it. A Controller is not safe for concurrent use: each page
// session owns its own.
package brand

// Package team administers the user directory and the organisation's
// security policy switches.
package team

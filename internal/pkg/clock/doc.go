// Package clock abstracts time retrieval so use cases can be tested with a
// fixed point in time instead of the system clock.
package clock

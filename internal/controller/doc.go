// Package controller owns the "start a job, render its events" flow shared
// by the desktop and terminal front-ends. It validates input, enforces the
// single-active-job rule and delivers each job's events to a View in
// emission order on the View's own goroutine.
package controller

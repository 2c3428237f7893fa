package render

import "fmt"

// ErrorMessage is the user-facing text for a failed search or detail load.
// Every failure carries the throttling hint since BGG throttles frequent searches.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Oops, something went wrong. If you search too often, BGG will throttle your request. Wait a minute and try again! Error: %s", err.Error())
}

package api

// Post-login destinations by course code. Unknown or empty courses land
// on the general dashboard.
var courseDestinations = map[string]string{
	"TNPSC":   "courses/tnpsc",
	"SSC":     "courses/ssc",
	"Railway": "courses/railway",
	"Banking": "courses/bank",
}

// DashboardDestination is the fallback when the profile has no mapped
// course.
const DashboardDestination = "general/dashboard"

// DestinationForCourse resolves where a user lands after login based on
// the course field of their profile.
func DestinationForCourse(course string) string {
	if dest, ok := courseDestinations[course]; ok {
		return dest
	}
	return DashboardDestination
}

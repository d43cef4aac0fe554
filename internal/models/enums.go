package models

// AppTypes and Templates are closed sets shared by server validation and
// the frontend (served via /api/meta). Requests carrying any other value
// are rejected.
var AppTypes = []string{"Mobile App", "Website", "WebApp"}

var Templates = []string{"Portfolio", "Business", "Blog", "E-Commerce"}

func ValidAppType(s string) bool {
	return contains(AppTypes, s)
}

func ValidTemplate(s string) bool {
	return contains(Templates, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

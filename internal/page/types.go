package page

// HeadingPrefix precedes the API URL in the heading text.
const HeadingPrefix = "API URL: "

// Data is the template model for the page shell.
// APIURL is shown as-is; html/template escaping is the only processing.
type Data struct {
	APIURL  string
	LogoSrc string
}

// Heading returns the exact heading text.
func (d Data) Heading() string {
	return HeadingPrefix + d.APIURL
}

// Package layout holds the page chrome shared by every web page
package layout

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // success, error or info
	Message string
}

// PageData is common data for every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

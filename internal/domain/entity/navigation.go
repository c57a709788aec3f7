package entity

// NavLink is one entry of the application sidebar
type NavLink struct {
	Label  string `json:"label"`
	Route  string `json:"route"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// PrimaryLinkCount is how many links form the signed-in primary section
const PrimaryLinkCount = 6

// LoginRoute is where signed-out visitors are sent to authenticate
const LoginRoute = "/sign-in"

var navLinks = []NavLink{
	{Label: "Home", Route: "/", Icon: "/assets/icons/home.svg"},
	{Label: "Image Restore", Route: "/transformations/add/restore", Icon: "/assets/icons/image.svg"},
	{Label: "Generative Fill", Route: "/transformations/add/fill", Icon: "/assets/icons/stars.svg"},
	{Label: "Object Remove", Route: "/transformations/add/remove", Icon: "/assets/icons/scan.svg"},
	{Label: "Object Recolor", Route: "/transformations/add/recolor", Icon: "/assets/icons/filter.svg"},
	{Label: "Background Remove", Route: "/transformations/add/removeBackground", Icon: "/assets/icons/camera.svg"},
	{Label: "Profile", Route: "/profile", Icon: "/assets/icons/profile.svg"},
	{Label: "Buy Credits", Route: "/credits", Icon: "/assets/icons/bag.svg"},
}

// NavLinks returns the full sidebar link list in display order
func NavLinks() []NavLink {
	out := make([]NavLink, len(navLinks))
	copy(out, navLinks)
	return out
}

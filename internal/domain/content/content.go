package content

import "time"

type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body"`
	Image       string    `json:"image,omitempty"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}

type Testimonial struct {
	ID       int64  `json:"id"`
	Author   string `json:"author"`
	Location string `json:"location,omitempty"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
}

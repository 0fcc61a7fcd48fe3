package domain

// ClientPrefs mirrors what the web client keeps in durable local storage:
// the selected theme identifier and whether the landing page was already
// seen. Stored server-side per client so it survives reloads.
type ClientPrefs struct {
	Theme   string `json:"theme"`
	Visited bool   `json:"visited"`
}

package entities

// RunState is the durable memory carried between runs. It is loaded once at
// run start and rewritten wholesale at run end.
type RunState struct {
	SeenURLs    []string `json:"seen_urls"`
	LastRun     string   `json:"last_run"`
	LastNewURLs []string `json:"last_new_urls"`
}

// SeenSet returns the seen URLs as a lookup set.
func (s RunState) SeenSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.SeenURLs))
	for _, url := range s.SeenURLs {
		set[url] = struct{}{}
	}
	return set
}

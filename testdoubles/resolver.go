package testdoubles

// UrlResolver is a test double for config.UrlResolver returning fixed values.
type UrlResolver struct {
	Url    string
	IsProd bool
}

func (r *UrlResolver) BaseUrl() string {
	return r.Url
}

func (r *UrlResolver) Production() bool {
	return r.IsProd
}

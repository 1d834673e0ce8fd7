package domain

// Session is the client-held identity: both fields are set together by
// login/register and cleared together by logout.
type Session struct {
	User  *UserSummary
	Token string
}

func (s Session) Valid() bool {
	return s.User != nil && s.Token != ""
}

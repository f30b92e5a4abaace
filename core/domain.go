package core

// Domain keys of the fixed top-level intents a turn can be routed to.
// DomainConversation doubles as the fallback when no rule fires.
const (
	DomainConversation = "conversation"
	DomainWeather      = "weather"
	DomainEducation    = "education"
	DomainEcommerce    = "ecommerce"
	DomainGovernment   = "government"
)

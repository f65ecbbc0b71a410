package kernel

type AdminID string

func NewAdminID(id string) AdminID { return AdminID(id) }
func (a AdminID) String() string   { return string(a) }
func (a AdminID) IsEmpty() bool    { return string(a) == "" }

type SessionID string

func NewSessionID(id string) SessionID { return SessionID(id) }
func (s SessionID) String() string     { return string(s) }
func (s SessionID) IsEmpty() bool      { return string(s) == "" }

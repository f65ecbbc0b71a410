package kernel

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (r ApplicationID) String() string         { return string(r) }
func (r ApplicationID) IsEmpty() bool          { return string(r) == "" }

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (r JobID) String() string { return string(r) }
func (r JobID) IsEmpty() bool  { return string(r) == "" }

type AgencyID string

func NewAgencyID(id string) AgencyID { return AgencyID(id) }
func (r AgencyID) String() string    { return string(r) }
func (r AgencyID) IsEmpty() bool     { return string(r) == "" }

type RecipientID string

func NewRecipientID(id string) RecipientID { return RecipientID(id) }
func (r RecipientID) String() string       { return string(r) }
func (r RecipientID) IsEmpty() bool        { return string(r) == "" }

type OptionID string

func NewOptionID(id string) OptionID { return OptionID(id) }
func (r OptionID) String() string    { return string(r) }
func (r OptionID) IsEmpty() bool     { return string(r) == "" }

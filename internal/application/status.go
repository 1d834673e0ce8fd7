package application

// Phase is the request lifecycle every store moves through:
// Idle -> Pending -> (Succeeded | Failed) -> Idle via explicit Reset.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

// OpKind tags which operation produced the current phase, so consumers branch
// on the tag instead of sniffing the display message.
type OpKind string

const (
	OpNone        OpKind = ""
	OpRegister    OpKind = "register"
	OpLogin       OpKind = "login"
	OpLogout      OpKind = "logout"
	OpCreate      OpKind = "create"
	OpFetch       OpKind = "fetch"
	OpFetchList   OpKind = "fetch-list"
	OpUpdate      OpKind = "update"
	OpDelete      OpKind = "delete"
	OpCycleStatus OpKind = "cycle-status"
	OpFetchUsers  OpKind = "fetch-users"
	OpFetchLogs   OpKind = "fetch-logs"
)

// Snapshot is the externally visible slice status.
type Snapshot struct {
	Phase   Phase
	Op      OpKind
	Message string
}

func (s Snapshot) Pending() bool   { return s.Phase == PhasePending }
func (s Snapshot) Succeeded() bool { return s.Phase == PhaseSucceeded }
func (s Snapshot) Failed() bool    { return s.Phase == PhaseFailed }

// status tracks the lifecycle plus a generation counter. Each begin or reset
// bumps the generation; a completion carrying a superseded generation is
// discarded entirely, so a late-arriving response never overwrites the state
// of a newer dispatch.
type status struct {
	phase   Phase
	op      OpKind
	message string
	gen     uint64
}

func (s *status) begin(op OpKind) uint64 {
	s.gen++
	s.phase = PhasePending
	s.op = op
	s.message = ""
	return s.gen
}

func (s *status) current(gen uint64) bool {
	return s.gen == gen
}

func (s *status) succeed(message string) {
	s.phase = PhaseSucceeded
	s.message = message
}

func (s *status) fail(err error) {
	s.phase = PhaseFailed
	s.message = err.Error()
}

func (s *status) reset() {
	s.gen++
	s.phase = PhaseIdle
	s.op = OpNone
	s.message = ""
}

func (s status) snapshot() Snapshot {
	phase := s.phase
	if phase == "" {
		phase = PhaseIdle
	}
	return Snapshot{Phase: phase, Op: s.op, Message: s.message}
}

package network

import "fmt"

type MessageType uint8

const (
	RequestVote MessageType = iota + 1
	VoteResponse
	AppendEntries
)

func (t MessageType) String() string {
	switch t {
	case RequestVote:
		return "request_vote"
	case VoteResponse:
		return "vote_response"
	case AppendEntries:
		return "append_entries"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

func (t MessageType) valid() bool {
	return t >= RequestVote && t <= AppendEntries
}

// Message is the single record exchanged between nodes. Fields that do not
// apply to Type are left at their zero value.
type Message struct {
	Type MessageType
	Term uint64
	From string

	// RequestVote
	CandidateId string

	// VoteResponse
	Granted bool

	// AppendEntries
	LeaderId string
	Value    string
}

func NewRequestVote(term uint64, candidateId string) *Message {
	return &Message{
		Type:        RequestVote,
		Term:        term,
		From:        candidateId,
		CandidateId: candidateId,
	}
}

func NewVoteResponse(term uint64, from string, granted bool) *Message {
	return &Message{
		Type:    VoteResponse,
		Term:    term,
		From:    from,
		Granted: granted,
	}
}

func NewAppendEntries(term uint64, leaderId string, value string) *Message {
	return &Message{
		Type:     AppendEntries,
		Term:     term,
		From:     leaderId,
		LeaderId: leaderId,
		Value:    value,
	}
}

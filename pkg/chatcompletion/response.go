package chatcompletion

// ChatResponse wraps the raw vendor response. It is read-only; the
// response exclusively owns its raw payload.
type ChatResponse struct {
	provider Provider
	raw      *VendorResponse
}

// Raw exposes the vendor response as received.
func (r *ChatResponse) Raw() *VendorResponse { return r.raw }

// Message returns the arity-tagged view over the response's choices: a
// single message when the vendor returned exactly one choice, otherwise
// the ordered list of messages, one per choice. Callers must branch on the
// arity explicitly; downstream code depends on the single/plural
// distinction to decide whether to iterate.
func (r *ChatResponse) Message() MessageView {
	if len(r.raw.Choices) == 1 {
		return MessageView{one: r.raw.Choices[0].Message}
	}
	many := make([]Message, 0, len(r.raw.Choices))
	for _, choice := range r.raw.Choices {
		many = append(many, *choice.Message)
	}
	return MessageView{many: many}
}

// FunctionCall mirrors Message's arity. For a single choice it yields that
// message's function call, nil when absent; for multiple choices it yields
// one entry per choice in vendor order, nil entries kept positionally for
// messages without a function call.
func (r *ChatResponse) FunctionCall() FunctionCallView {
	message := r.Message()
	if single, ok := message.Single(); ok {
		return FunctionCallView{single: true, one: single.FunctionCall}
	}

	messages, _ := message.Multiple()
	many := make([]*FunctionCall, len(messages))
	for i, m := range messages {
		many[i] = m.FunctionCall
	}
	return FunctionCallView{many: many}
}

// MessageView is the tagged single-or-multiple variant over completion
// messages. Exactly one of Single and Multiple reports ok.
type MessageView struct {
	one  *Message
	many []Message
}

// Single returns the message when the response carried exactly one choice.
func (v MessageView) Single() (Message, bool) {
	if v.one == nil {
		return Message{}, false
	}
	return *v.one, true
}

// Multiple returns the per-choice messages when the response carried more
// than one choice, in the vendor's returned order.
func (v MessageView) Multiple() ([]Message, bool) {
	if v.one != nil {
		return nil, false
	}
	return v.many, true
}

// FunctionCallView is the tagged single-or-multiple variant over function
// calls, aligned with the MessageView it derives from.
type FunctionCallView struct {
	single bool
	one    *FunctionCall
	many   []*FunctionCall
}

// Single returns the function call of a single-choice response. The
// pointer is nil when the message carried no function call; the bool only
// reports the arity.
func (v FunctionCallView) Single() (*FunctionCall, bool) {
	if !v.single {
		return nil, false
	}
	return v.one, true
}

// Multiple returns one entry per choice, nil entries preserved for choices
// without a function call.
func (v FunctionCallView) Multiple() ([]*FunctionCall, bool) {
	if v.single {
		return nil, false
	}
	return v.many, true
}

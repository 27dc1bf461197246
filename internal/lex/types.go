// Package lex defines the Amazon Lex (v1) code hook request and response
// envelopes and helpers for building the four dialog action variants.
package lex

// Invocation sources. Lex invokes the code hook either mid-dialog for
// validation or at the end for fulfillment.
const (
	SourceDialogCodeHook      = "DialogCodeHook"
	SourceFulfillmentCodeHook = "FulfillmentCodeHook"
)

// Dialog action types.
const (
	ActionElicitSlot    = "ElicitSlot"
	ActionConfirmIntent = "ConfirmIntent"
	ActionClose         = "Close"
	ActionDelegate      = "Delegate"
)

// FulfillmentFulfilled marks a Close action as successfully fulfilled.
const FulfillmentFulfilled = "Fulfilled"

// ContentTypePlainText is the message content type for spoken/text prompts.
const ContentTypePlainText = "PlainText"

// CardContentType is the only response card content type Lex v1 supports.
const CardContentType = "application/vnd.amazonaws.card.generic"

// Request is the inbound turn envelope from Lex.
type Request struct {
	CurrentIntent     *CurrentIntent    `json:"currentIntent"`
	Bot               *Bot              `json:"bot,omitempty"`
	UserID            string            `json:"userId"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	InvocationSource  string            `json:"invocationSource"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty"`
	MessageVersion    string            `json:"messageVersion,omitempty"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
}

// CurrentIntent carries the intent name and the slot values collected so far.
// A slot that has not been collected yet is absent from Slots or empty.
type CurrentIntent struct {
	Name               string                `json:"name"`
	Slots              map[string]string     `json:"slots"`
	SlotDetails        map[string]SlotDetail `json:"slotDetails,omitempty"`
	ConfirmationStatus string                `json:"confirmationStatus,omitempty"`
}

// SlotDetail carries the original utterance fragment and resolution list
// for one slot.
type SlotDetail struct {
	Resolutions   []SlotResolution `json:"resolutions,omitempty"`
	OriginalValue string           `json:"originalValue,omitempty"`
}

// SlotResolution is a single resolved candidate value for a slot.
type SlotResolution struct {
	Value string `json:"value"`
}

// Bot identifies the bot definition that produced the request.
type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"`
	Version string `json:"version,omitempty"`
}

// Response is the outbound turn envelope returned to Lex.
type Response struct {
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	DialogAction      *DialogAction     `json:"dialogAction"`
}

// DialogAction tells Lex what to do next: elicit a slot, confirm the
// intent, delegate, or close the conversation.
type DialogAction struct {
	Type             string            `json:"type"`
	FulfillmentState string            `json:"fulfillmentState,omitempty"`
	Message          *Message          `json:"message,omitempty"`
	IntentName       string            `json:"intentName,omitempty"`
	Slots            map[string]string `json:"slots,omitempty"`
	SlotToElicit     string            `json:"slotToElicit,omitempty"`
	ResponseCard     *ResponseCard     `json:"responseCard,omitempty"`
}

// Message is a prompt spoken or displayed to the caller.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// ResponseCard renders quick-reply buttons on clients that support them.
type ResponseCard struct {
	Version            int                 `json:"version"`
	ContentType        string              `json:"contentType"`
	GenericAttachments []GenericAttachment `json:"genericAttachments,omitempty"`
}

// GenericAttachment is one card of a response card.
type GenericAttachment struct {
	Title    string   `json:"title"`
	SubTitle string   `json:"subTitle,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// Button is a single quick-reply option.
type Button struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

package lex

// maxCardButtons is the Lex v1 limit on buttons per response card.
const maxCardButtons = 5

// PlainText wraps content in a plain-text message.
func PlainText(content string) *Message {
	return &Message{ContentType: ContentTypePlainText, Content: content}
}

// ElicitSlot builds a directive asking the caller to supply one slot.
func ElicitSlot(sessionAttributes map[string]string, intentName string, slots map[string]string, slotToElicit string, message *Message, card *ResponseCard) *Response {
	return &Response{
		SessionAttributes: sessionAttributes,
		DialogAction: &DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
			ResponseCard: card,
		},
	}
}

// ConfirmIntent builds a yes/no confirmation directive for the current slots.
func ConfirmIntent(sessionAttributes map[string]string, intentName string, slots map[string]string, message *Message, card *ResponseCard) *Response {
	return &Response{
		SessionAttributes: sessionAttributes,
		DialogAction: &DialogAction{
			Type:         ActionConfirmIntent,
			IntentName:   intentName,
			Slots:        slots,
			Message:      message,
			ResponseCard: card,
		},
	}
}

// Close builds a directive ending the conversation as fulfilled.
func Close(sessionAttributes map[string]string, message *Message) *Response {
	return &Response{
		SessionAttributes: sessionAttributes,
		DialogAction: &DialogAction{
			Type:             ActionClose,
			FulfillmentState: FulfillmentFulfilled,
			Message:          message,
		},
	}
}

// Delegate builds a directive telling Lex to proceed without prompting.
func Delegate(sessionAttributes map[string]string, slots map[string]string) *Response {
	return &Response{
		SessionAttributes: sessionAttributes,
		DialogAction: &DialogAction{
			Type:  ActionDelegate,
			Slots: slots,
		},
	}
}

// NewResponseCard builds a single-attachment card, capping the button
// list at the Lex limit.
func NewResponseCard(title, subtitle string, options []Button) *ResponseCard {
	buttons := options
	if len(buttons) > maxCardButtons {
		buttons = buttons[:maxCardButtons]
	}

	return &ResponseCard{
		Version:     1,
		ContentType: CardContentType,
		GenericAttachments: []GenericAttachment{
			{Title: title, SubTitle: subtitle, Buttons: buttons},
		},
	}
}

package services

import "strings"

// InboundMessage is one webhook delivery.
type InboundMessage struct {
	Body string
	From string
}

// Reply is the synchronous webhook reply. An empty body means no message.
type Reply struct {
	Body string
}

func (r Reply) Empty() bool {
	return strings.TrimSpace(r.Body) == ""
}

func textReply(body string) Reply {
	return Reply{Body: body}
}

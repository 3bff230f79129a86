package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/logger"
	"github.com/osse101/MisinfoX_Go/internal/twiml"
)

// HandleWebhook answers a messaging provider webhook with a TwiML reply.
// Every accepted request gets 200 and a single message, including internal failures.
// Requests failing signature validation get 403.
func HandleWebhook(router MessageRouter, signatures *twiml.SignatureValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		defer func() {
			if rec := recover(); rec != nil {
				log.Error(LogMsgWebhookPanic,
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()))
				respondXML(w, http.StatusOK, twiml.InternalError())
			}
		}()

		if err := r.ParseForm(); err != nil {
			// An unreadable form is treated as an empty message.
			log.Warn(ErrMsgInvalidForm, "error", err)
		}

		if !signatures.Valid(r) {
			log.Warn(LogMsgSignatureRejected, "path", r.URL.Path)
			http.Error(w, ErrMsgInvalidSignature, http.StatusForbidden)
			return
		}

		msg := domain.InboundMessage{
			Body: r.PostForm.Get(FormFieldBody),
			From: r.PostForm.Get(FormFieldFrom),
		}
		log.Info(LogMsgWebhookReceived, "from", maskSender(msg.From), "length", len(msg.Body))

		// The pipeline runs to completion even if the provider drops the connection.
		verdict := router.Route(context.WithoutCancel(r.Context()), msg)

		respondXML(w, http.StatusOK, twiml.MustCompose(verdict.Text))
		log.Info(LogMsgWebhookReplied,
			"intent", verdict.Intent,
			"outcome", verdict.Outcome,
			"reply_length", len(verdict.Text))
	}
}

// maskSender hides all but the last few digits of a sender address, keeping
// any channel prefix such as "whatsapp:".
func maskSender(from string) string {
	if from == "" {
		return ""
	}
	channel, addr := "", from
	if i := strings.LastIndex(from, ":"); i >= 0 {
		channel, addr = from[:i+1], from[i+1:]
	}

	runes := []rune(addr)
	keep := senderVisibleDigits
	if len(runes) <= keep {
		keep = 0
	}
	for i := 0; i < len(runes)-keep; i++ {
		if runes[i] != '+' {
			runes[i] = '*'
		}
	}
	return channel + string(runes)
}

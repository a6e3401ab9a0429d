package email

import (
	"context"
	"errors"
	"net"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/mailbite/internal/pkg/goerror"
	"github.com/shandysiswandi/mailbite/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbite/internal/pkg/mail"
	"github.com/shandysiswandi/mailbite/internal/relay/entity"
)

type fakeMail struct {
	id        string
	sendErr   error
	verifyErr error
	sent      []mail.Message
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) (string, error) {
	f.sent = append(f.sent, msg)
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.id, nil
}

func (f *fakeMail) Verify(context.Context) error { return f.verifyErr }
func (f *fakeMail) Close() error                 { return nil }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newDispatcher(transport mail.Mail, factory Factory) *Dispatcher {
	return New(Config{
		Transport:   transport,
		Factory:     factory,
		FromName:    "Phrase Relay",
		FromAddress: "relay@example.com",
		To:          "owner@example.com",
		Clock:       fixedClock{t: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)},
		Instrument:  instrument.NewNoop(),
	})
}

func TestSendBuildsMessage(t *testing.T) {
	transport := &fakeMail{id: "<abc@test>"}
	d := newDispatcher(transport, nil)

	phrase := "  hello world  " // untrimmed on purpose
	result, err := d.Send(context.Background(), phrase, entity.RequestMeta{})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if result.MessageID != "<abc@test>" {
		t.Errorf("message id = %q", result.MessageID)
	}

	if len(transport.sent) != 1 {
		t.Fatalf("expected exactly one transport send, got %d", len(transport.sent))
	}
	msg := transport.sent[0]

	if msg.From != `"Phrase Relay" <relay@example.com>` {
		t.Errorf("from = %q", msg.From)
	}
	if len(msg.To) != 1 || msg.To[0] != "owner@example.com" {
		t.Errorf("to = %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "March 14, 2026") {
		t.Errorf("subject %q should contain the current date", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, phrase) {
		t.Errorf("text body should contain the untrimmed phrase verbatim:\n%s", msg.TextBody)
	}
	if !strings.Contains(msg.HTMLBody, phrase) {
		t.Errorf("html body should contain the untrimmed phrase verbatim:\n%s", msg.HTMLBody)
	}
	if !strings.Contains(msg.TextBody, entity.UnknownMeta) || !strings.Contains(msg.HTMLBody, entity.UnknownMeta) {
		t.Error("missing ip/user-agent should fall back to the placeholder")
	}
}

func TestSendEmbedsRequestMeta(t *testing.T) {
	transport := &fakeMail{id: "<abc@test>"}
	d := newDispatcher(transport, nil)

	_, err := d.Send(context.Background(), "hi", entity.RequestMeta{
		IP:        "203.0.113.9",
		UserAgent: "curl/8.0",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	msg := transport.sent[0]
	for _, want := range []string{"203.0.113.9", "curl/8.0"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestLazyHandleCreation(t *testing.T) {
	transport := &fakeMail{id: "<abc@test>"}
	calls := 0
	factory := func() (mail.Mail, error) {
		calls++
		return transport, nil
	}

	d := newDispatcher(nil, factory)

	if _, err := d.Send(context.Background(), "one", entity.RequestMeta{}); err != nil {
		t.Fatalf("first send: %v", err)
	}
	if _, err := d.Send(context.Background(), "two", entity.RequestMeta{}); err != nil {
		t.Fatalf("second send: %v", err)
	}

	if calls != 1 {
		t.Errorf("factory called %d times, want 1 (handle reused)", calls)
	}
	if len(transport.sent) != 2 {
		t.Errorf("transport sends = %d, want 2", len(transport.sent))
	}
}

func TestFactoryFailureIsConfigError(t *testing.T) {
	d := newDispatcher(nil, func() (mail.Mail, error) {
		return nil, mail.ErrSMTPHostPortRequired
	})

	_, err := d.Send(context.Background(), "hi", entity.RequestMeta{})

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T", err)
	}
	if gerr.Code() != goerror.CodeDispatchConfig {
		t.Errorf("code = %v, want CodeDispatchConfig", gerr.Code())
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want goerror.Code
	}{
		{name: "auth 535", err: &textproto.Error{Code: 535, Msg: "Username and Password not accepted"}, want: goerror.CodeDispatchAuth},
		{name: "auth 530", err: &textproto.Error{Code: 530, Msg: "Authentication Required"}, want: goerror.CodeDispatchAuth},
		{name: "envelope 550", err: &textproto.Error{Code: 550, Msg: "No such user"}, want: goerror.CodeDispatchEnvelope},
		{name: "envelope 553", err: &textproto.Error{Code: 553, Msg: "Mailbox name invalid"}, want: goerror.CodeDispatchEnvelope},
		{name: "other smtp reply", err: &textproto.Error{Code: 421, Msg: "Service not available"}, want: goerror.CodeDispatchUnknown},
		{name: "dial failure", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: goerror.CodeDispatchConnection},
		{name: "dns failure", err: &net.DNSError{Err: "no such host", Name: "smtp.gmail.com"}, want: goerror.CodeDispatchConnection},
		{name: "deadline", err: context.DeadlineExceeded, want: goerror.CodeDispatchConnection},
		{name: "anything else", err: errors.New("weird"), want: goerror.CodeDispatchUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &fakeMail{sendErr: tc.err}
			d := newDispatcher(transport, nil)

			_, err := d.Send(context.Background(), "hi", entity.RequestMeta{})

			var gerr *goerror.Error
			if !errors.As(err, &gerr) {
				t.Fatalf("expected *goerror.Error, got %T", err)
			}
			if gerr.Code() != tc.want {
				t.Errorf("code = %v, want %v", gerr.Code(), tc.want)
			}
			if !errors.Is(err, tc.err) {
				t.Error("classified error should wrap the provider error")
			}
		})
	}
}

func TestVerifyPassthrough(t *testing.T) {
	transport := &fakeMail{}
	d := newDispatcher(transport, nil)
	if err := d.Verify(context.Background()); err != nil {
		t.Errorf("verify: %v", err)
	}

	cause := errors.New("535 bad credentials")
	d = newDispatcher(&fakeMail{verifyErr: cause}, nil)
	if err := d.Verify(context.Background()); !errors.Is(err, cause) {
		t.Errorf("verify should return the raw failure, got %v", err)
	}
}

func TestRenderBodiesEscapesHTMLOnly(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	meta := entity.RequestMeta{IP: "1.2.3.4", UserAgent: "tester"}

	htmlBody, textBody, err := renderBodies("<script>alert(1)</script>", ts, meta)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(htmlBody, "<script>") {
		t.Error("html body must escape markup in the phrase")
	}
	if !strings.Contains(textBody, "<script>alert(1)</script>") {
		t.Error("text body must carry the phrase verbatim")
	}
}

package mailx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/seodesk/pkg/slogx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	in  *sesv2.SendEmailInput
	out *sesv2.SendEmailOutput
	err error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.in = in
	return f.out, f.err
}

func TestSESMailerSend(t *testing.T) {
	t.Run("builds a simple message", func(t *testing.T) {
		fake := &fakeSES{out: &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}}
		m := &SESMailer{client: fake, from: "no-reply@seodesk.test"}

		id, err := m.Send(context.Background(), Message{
			To:      []string{"alice@example.com"},
			Subject: "Hello",
			HTML:    "<p>hi</p>",
			Text:    "hi",
		})
		require.NoError(t, err)
		require.Equal(t, "msg-1", id)

		require.Equal(t, "no-reply@seodesk.test", *fake.in.FromEmailAddress)
		require.Equal(t, []string{"alice@example.com"}, fake.in.Destination.ToAddresses)
		require.Equal(t, "Hello", *fake.in.Content.Simple.Subject.Data)
		require.Equal(t, "<p>hi</p>", *fake.in.Content.Simple.Body.Html.Data)
		require.Equal(t, "hi", *fake.in.Content.Simple.Body.Text.Data)
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		boom := errors.New("throttled")
		m := &SESMailer{client: &fakeSES{err: boom}, from: "x@y.z"}

		_, err := m.Send(context.Background(), Message{To: []string{"a@b.c"}})
		require.ErrorIs(t, err, boom)
	})

	t.Run("requires recipients", func(t *testing.T) {
		m := &SESMailer{client: &fakeSES{}, from: "x@y.z"}
		_, err := m.Send(context.Background(), Message{})
		require.ErrorIs(t, err, ErrNoRecipients)
	})
}

func TestNewSESMailerValidation(t *testing.T) {
	_, err := NewSESMailer(context.Background(), SESConfig{})
	require.Error(t, err)

	_, err = NewSESMailer(context.Background(), SESConfig{From: "a@b.c", AccessKeyID: "only-half"})
	require.Error(t, err)
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	ctx := slogx.WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	id, err := LogMailer{}.Send(ctx, Message{To: []string{"bob@example.com"}, Subject: "Invite"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Contains(t, buf.String(), `"subject":"Invite"`)
	require.Contains(t, buf.String(), id)
}

package mailx

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESConfig configures the SES v2 transport. When the access key pair is
// empty the default AWS credential chain is used.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	From            string
}

// sesAPI is the subset of the SES v2 client we call.
type sesAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer sends mail through Amazon SES v2.
type SESMailer struct {
	client sesAPI
	from   string
}

// NewSESMailer loads the AWS configuration and builds an SES v2 client.
func NewSESMailer(ctx context.Context, cfg SESConfig) (*SESMailer, error) {
	if cfg.From == "" {
		return nil, errors.New("mailx: sender address is empty")
	}

	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return nil, errors.New("mailx: both access key id and secret access key are required")
		}
		cred := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)
		opts = append(opts, config.WithCredentialsProvider(cred))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailx: load aws config: %w", err)
	}

	return &SESMailer{client: sesv2.NewFromConfig(awsCfg), from: cfg.From}, nil
}

// Send delivers msg as a simple SES message with HTML and text parts.
func (m *SESMailer) Send(ctx context.Context, msg Message) (string, error) {
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}

	body := &types.Body{}
	if msg.HTML != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")}
	}
	if msg.Text != "" {
		body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Body:    body,
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			},
		},
	}

	output, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("mailx: ses send: %w", err)
	}
	if output == nil || output.MessageId == nil {
		return "", errors.New("mailx: ses returned no message id")
	}
	return *output.MessageId, nil
}

package sts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adrianliechti/briefing/pkg/broker"
	"github.com/adrianliechti/briefing/pkg/fault"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/stretchr/testify/require"
)

type fakeRoles struct {
	input *sts.AssumeRoleInput

	output *sts.AssumeRoleOutput
	err    error
}

func (f *fakeRoles) AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error) {
	f.input = params
	return f.output, f.err
}

func TestCredentials(t *testing.T) {
	expiration := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	roles := &fakeRoles{
		output: &sts.AssumeRoleOutput{
			Credentials: &types.Credentials{
				AccessKeyId:     aws.String("ASIA123"),
				SecretAccessKey: aws.String("secret"),
				SessionToken:    aws.String("token"),
				Expiration:      aws.Time(expiration),
			},
		},
	}

	c := &Client{
		Config: &Config{
			role:     "arn:aws:iam::123456789012:role/transcribe",
			region:   "us-east-1",
			duration: 15 * time.Minute,
		},

		roles: roles,
	}

	creds, err := c.Credentials(context.Background())
	require.NoError(t, err)

	require.Equal(t, "arn:aws:iam::123456789012:role/transcribe", aws.ToString(roles.input.RoleArn))
	require.Equal(t, broker.SessionName, aws.ToString(roles.input.RoleSessionName))
	require.Equal(t, int32(900), aws.ToInt32(roles.input.DurationSeconds))

	require.Equal(t, &broker.Credentials{
		AccessKeyID:     "ASIA123",
		SecretAccessKey: "secret",
		SessionToken:    "token",

		Expiration: expiration,
		Region:     "us-east-1",
	}, creds)
}

func TestCredentialsFailure(t *testing.T) {
	c := &Client{
		Config: &Config{
			role: "arn:aws:iam::123456789012:role/transcribe",
		},

		roles: &fakeRoles{
			err: errors.New("access denied"),
		},
	}

	creds, err := c.Credentials(context.Background())

	require.Nil(t, creds)
	require.ErrorContains(t, err, "access denied")
	require.Equal(t, fault.KindDependency, fault.KindOf(err))
}

func TestNewRequiresRole(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

package registry_credentials

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ecr"
	"github.com/aws/aws-sdk-go/service/ecr/ecriface"

	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

// EcrProvider exchanges ambient AWS credentials for a short-lived ECR
// authorization token. The token is only valid for a few hours, so it is
// fetched fresh on every publish and launch.
type EcrProvider struct {
	// newClient is swapped in tests; the default builds a real ECR client
	// from the environment's AWS credential chain.
	newClient func(region string) (ecriface.ECRAPI, error)
}

func ProvideEcrProvider() *EcrProvider {
	return &EcrProvider{newClient: newEcrClient}
}

func newEcrClient(region string) (ecriface.ECRAPI, error) {
	awsConf := aws.NewConfig()
	if region != "" {
		awsConf.WithRegion(region)
	}
	sess, err := session.NewSession(awsConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}
	return ecr.New(sess), nil
}

func (p *EcrProvider) Credentials(registry domain.Registry) (ports.Credential, error) {
	client, err := p.newClient(registry.Region)
	if err != nil {
		return ports.Credential{}, err
	}

	resp, err := client.GetAuthorizationToken(&ecr.GetAuthorizationTokenInput{})
	if err != nil {
		return ports.Credential{}, fmt.Errorf("failed to get ECR authorization token: %v", err)
	}
	if len(resp.AuthorizationData) == 0 || resp.AuthorizationData[0].AuthorizationToken == nil {
		return ports.Credential{}, fmt.Errorf("ECR returned no authorization data for registry %s", registry.Host)
	}

	decoded, err := base64.StdEncoding.DecodeString(*resp.AuthorizationData[0].AuthorizationToken)
	if err != nil {
		return ports.Credential{}, fmt.Errorf("failed to decode ECR authorization token: %v", err)
	}

	// The token decodes to "user:password", with user fixed to "AWS".
	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return ports.Credential{}, fmt.Errorf("ECR authorization token for registry %s is malformed", registry.Host)
	}

	return ports.Credential{Username: username, Password: password}, nil
}

var _ ports.EcrCredentialProvider = (*EcrProvider)(nil)

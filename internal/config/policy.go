package config

import (
	"fmt"
	"os"

	"statement-transformer/internal/models"
	"statement-transformer/internal/transform"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PolicyFile is the YAML form of a transform policy:
//
//	defaults:
//	  cardType: credit
//	  realm: consumer
//	  presence: inPerson
//	  region: uk
//	  scheme: other
//	reconciliationTolerance: "0.01"
type PolicyFile struct {
	Defaults struct {
		CardType string `yaml:"cardType"`
		Realm    string `yaml:"realm"`
		Presence string `yaml:"presence"`
		Region   string `yaml:"region"`
		Scheme   string `yaml:"scheme"`
	} `yaml:"defaults"`
	ReconciliationTolerance string `yaml:"reconciliationTolerance"`
}

func LoadPolicyFile(path string) (*PolicyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	var file PolicyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	return &file, nil
}

// Policy builds the transform policy: built-in defaults, then the policy file,
// then individual environment overrides. The result is validated.
func (c *TransformConfig) Policy() (transform.Policy, error) {
	policy := transform.DefaultPolicy()

	if c.PolicyFile != "" {
		file, err := LoadPolicyFile(c.PolicyFile)
		if err != nil {
			return transform.Policy{}, err
		}
		if err := applyOverrides(&policy,
			file.Defaults.CardType, file.Defaults.Realm, file.Defaults.Presence,
			file.Defaults.Region, file.Defaults.Scheme, file.ReconciliationTolerance,
		); err != nil {
			return transform.Policy{}, fmt.Errorf("policy file %s: %w", c.PolicyFile, err)
		}
	}

	if err := applyOverrides(&policy,
		c.DefaultCardType, c.DefaultRealm, c.DefaultPresence,
		c.DefaultRegion, c.DefaultScheme, c.ReconciliationTolerance,
	); err != nil {
		return transform.Policy{}, err
	}

	if err := policy.Validate(); err != nil {
		return transform.Policy{}, err
	}
	return policy, nil
}

func applyOverrides(policy *transform.Policy, cardType, realm, presence, region, scheme, tolerance string) error {
	if cardType != "" {
		policy.Tags.DefaultCardType = models.CardType(cardType)
	}
	if realm != "" {
		policy.Tags.DefaultRealm = models.Realm(realm)
	}
	if presence != "" {
		policy.Tags.DefaultPresence = models.Presence(presence)
	}
	if region != "" {
		policy.Tags.DefaultRegion = models.Region(region)
	}
	if scheme != "" {
		policy.Tags.DefaultScheme = models.Scheme(scheme)
	}
	if tolerance != "" {
		value, err := decimal.NewFromString(tolerance)
		if err != nil {
			return fmt.Errorf("%w: reconciliation tolerance %q", transform.ErrInvalidPolicy, tolerance)
		}
		policy.ReconciliationTolerance = value
	}
	return nil
}

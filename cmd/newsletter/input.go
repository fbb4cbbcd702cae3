package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fundkit/pkg/campaign"
	"github.com/dmitrymomot/fundkit/pkg/newsletter"
)

// recipientFile is the YAML layout of a recipient list:
//
//	recipients:
//	  - email: sam@example.com
//	    name: Sam
//	    unsubscribe_url: https://example.org/u/sam
//	    data:
//	      STORY_TITLE: Clean Water Well
type recipientFile struct {
	Recipients []struct {
		Email          string         `yaml:"email"`
		Name           string         `yaml:"name"`
		UnsubscribeURL string         `yaml:"unsubscribe_url"`
		Data           map[string]any `yaml:"data"`
	} `yaml:"recipients"`
}

// loadData reads a flat YAML mapping of placeholder names to values.
func loadData(path string) (newsletter.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return parseData(raw)
}

func parseData(raw []byte) (newsletter.Data, error) {
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	return newsletter.Data(m), nil
}

func loadRecipients(path string) ([]campaign.Recipient, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipients file: %w", err)
	}
	return parseRecipients(raw)
}

func parseRecipients(raw []byte) ([]campaign.Recipient, error) {
	var f recipientFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse recipients file: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Recipients))
	out := make([]campaign.Recipient, 0, len(f.Recipients))
	for i, r := range f.Recipients {
		addr := strings.TrimSpace(r.Email)
		if addr == "" {
			return nil, fmt.Errorf("recipient %d: email is required", i+1)
		}
		key := strings.ToLower(addr)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, campaign.Recipient{
			Email:          addr,
			Name:           strings.TrimSpace(r.Name),
			UnsubscribeURL: strings.TrimSpace(r.UnsubscribeURL),
			Data:           newsletter.Data(r.Data),
		})
	}
	return out, nil
}

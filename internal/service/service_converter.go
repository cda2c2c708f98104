// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/marchocode/clash-merger/internal/adapter"
	"github.com/marchocode/clash-merger/internal/config"
	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/models"
	"gopkg.in/yaml.v3"
)

const (
	rulesKey       = "rules"
	proxyGroupsKey = "proxy-groups"
	groupNameKey   = "name"

	// ProxyGroupName is the name forced onto the only proxy group kept from
	// the subscription.
	ProxyGroupName = "PROXY"
)

type converterService struct {
	subscriptionAdapter adapter.SubscriptionAdapter
	cfg                 config.Subscription

	logger *logger.Logger
}

func NewConverterService(subscriptionAdapter adapter.SubscriptionAdapter, cfg config.Subscription, logger *logger.Logger) ConverterService {
	return &converterService{
		subscriptionAdapter: subscriptionAdapter,
		cfg:                 cfg,
		logger:              logger,
	}
}

func (c *converterService) Fetch(ctx context.Context, rawURL string) (*models.Document, error) {
	body, err := c.subscriptionAdapter.FetchSubscription(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	doc, err := models.ParseDocument(body)
	if err != nil {
		return nil, fmt.Errorf("%w: subscription: %w", ErrParse, err)
	}

	if err = rewriteSubscription(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (c *converterService) Merge(doc *models.Document, overridePath string) (*models.Document, error) {
	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading override file: %w", ErrIO, err)
	}

	override, err := models.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: override file %s: %w", ErrParse, overridePath, err)
	}

	mergeDocuments(doc, override)

	return doc, nil
}

func (c *converterService) Serialize(doc *models.Document, w io.Writer) error {
	if err := doc.Encode(w); err != nil {
		return fmt.Errorf("%w: writing yaml: %w", ErrIO, err)
	}
	return nil
}

func (c *converterService) Convert(ctx context.Context, w io.Writer) error {
	if c.cfg.URL == "" {
		return ErrSubscriptionURLNotSet
	}

	log := contextLogger(ctx, c.logger)

	start := time.Now()
	doc, err := c.Fetch(ctx, c.cfg.URL)
	if err != nil {
		return err
	}
	log.Debug().Int("keys", doc.Len()).Dur("duration", time.Since(start)).Msg("subscription fetched")

	start = time.Now()
	if doc, err = c.Merge(doc, c.cfg.OverridePath); err != nil {
		return err
	}
	log.Debug().Str("override_path", c.cfg.OverridePath).Int("keys", doc.Len()).
		Dur("duration", time.Since(start)).Msg("override merged")

	start = time.Now()
	if err = c.Serialize(doc, w); err != nil {
		return err
	}
	log.Debug().Dur("duration", time.Since(start)).Msg("subscription serialized")

	return nil
}

// rewriteSubscription drops the subscription's rules and keeps only its first
// proxy group, renamed to [ProxyGroupName]. A missing, empty or non-sequence
// "proxy-groups" value is left as is.
func rewriteSubscription(doc *models.Document) error {
	doc.Delete(rulesKey)

	groups, ok := doc.Get(proxyGroupsKey)
	if !ok || groups.Kind != yaml.SequenceNode || len(groups.Content) == 0 {
		return nil
	}

	first, err := models.WrapMapping(groups.Content[0])
	if err != nil {
		return fmt.Errorf("%w: first entry of %s: %w", ErrParse, proxyGroupsKey, err)
	}
	first.Set(groupNameKey, models.StringNode(ProxyGroupName))

	doc.Set(proxyGroupsKey, &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Content: []*yaml.Node{first.Node()},
	})

	return nil
}

// mergeDocuments applies override on top of dst, one top-level key at a time
// in the override's order. When both values are sequences the override items
// are appended; any other combination replaces the value in dst.
func mergeDocuments(dst, override *models.Document) {
	override.Pairs(func(key, value *yaml.Node) {
		current, ok := dst.LookupNode(key)
		if ok && current.Kind == yaml.SequenceNode && value.Kind == yaml.SequenceNode {
			current.Content = append(current.Content, value.Content...)
			return
		}
		dst.SetNode(key, value)
	})
}

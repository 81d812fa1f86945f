package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Topic is a named broadcast group, either "shop:{id}" or "branch:{id}".
type Topic string

const (
	topicShopPrefix   = "shop:"
	topicBranchPrefix = "branch:"
)

// ShopTopic returns the topic covering every connection of a shop.
func ShopTopic(shopID uuid.UUID) Topic {
	return Topic(topicShopPrefix + shopID.String())
}

// BranchTopic returns the topic covering every connection of a branch.
func BranchTopic(branchID uuid.UUID) Topic {
	return Topic(topicBranchPrefix + branchID.String())
}

// Scope returns the broadcast scope this topic addresses.
func (t Topic) Scope() BroadcastScope {
	switch {
	case strings.HasPrefix(string(t), topicShopPrefix):
		return BroadcastScopeShop
	case strings.HasPrefix(string(t), topicBranchPrefix):
		return BroadcastScopeBranch
	default:
		return ""
	}
}

// ID returns the shop or branch id embedded in the topic.
func (t Topic) ID() (uuid.UUID, bool) {
	_, raw, ok := strings.Cut(string(t), ":")
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func (t Topic) String() string {
	return string(t)
}

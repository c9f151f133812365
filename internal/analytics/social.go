// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package analytics

import (
	"context"
	"sort"

	"github.com/journeyscope/journeyscope/internal/database"
	"github.com/journeyscope/journeyscope/internal/models"
	"github.com/journeyscope/journeyscope/internal/window"
)

// Social computes the social domain: network totals and density, the
// degree-based influence ranking, the friend-request funnel and the
// bounded network graph.
func (a *Aggregator) Social(ctx context.Context, w window.Window, limit int) (*models.SocialAnalytics, error) {
	totalUsers, err := a.db.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalFriendships, err := a.db.CountFriendships(ctx)
	if err != nil {
		return nil, err
	}

	overview := models.NetworkOverview{
		TotalFriendships:  totalFriendships,
		NetworkDensity:    networkDensity(totalFriendships, totalUsers),
		AvgFriendsPerUser: ratio(float64(totalFriendships), float64(totalUsers)),
	}
	// Totals stay window-invariant; bounded requests additionally get
	// the in-window edge count.
	if w.Bounded() {
		inWindow, err := a.db.CountFriendshipsInWindow(ctx, database.FilterFromWindow(w))
		if err != nil {
			return nil, err
		}
		overview.FriendshipsInWindow = inWindow
	}

	degrees, err := a.db.TopUsersByDegree(ctx, limit)
	if err != nil {
		return nil, err
	}
	influential := make([]models.InfluentialUser, len(degrees))
	for i, d := range degrees {
		influential[i] = models.InfluentialUser{
			UserID:      d.UserID,
			DisplayName: d.DisplayName(),
			Degree:      d.Degree,
		}
	}

	funnel, err := a.requestFunnel(ctx)
	if err != nil {
		return nil, err
	}

	graph, err := a.networkGraph(ctx)
	if err != nil {
		return nil, err
	}

	return &models.SocialAnalytics{
		NetworkOverview:  overview,
		InfluentialUsers: influential,
		RequestFunnel:    funnel,
		NetworkGraph:     graph,
	}, nil
}

// networkDensity is 2E / (n*(n-1)) as a percentage, 0 for fewer than
// two users.
func networkDensity(edges, users int) float64 {
	if users < 2 {
		return 0
	}
	return round2(float64(2*edges) / float64(users*(users-1)) * 100)
}

// requestFunnel summarizes the optional friend-request stream; an
// absent stream degrades to zeros.
func (a *Aggregator) requestFunnel(ctx context.Context) (models.FriendRequestFunnel, error) {
	total, accepted, pending, err := a.db.FriendRequestCounts(ctx)
	if err != nil {
		return models.FriendRequestFunnel{}, err
	}
	return models.FriendRequestFunnel{
		TotalRequests:    total,
		AcceptedRequests: accepted,
		PendingRequests:  pending,
		AcceptanceRate:   percentage(float64(accepted), float64(total)),
	}, nil
}

// networkGraph samples a bounded set of friendship edges, computes
// degrees within the sample and assigns influence groups 0-4 by
// thresholds at 20/40/60/80% of the max sampled degree.
func (a *Aggregator) networkGraph(ctx context.Context) (models.NetworkGraph, error) {
	edges, err := a.db.SampleFriendshipEdges(ctx, networkGraphEdgeCap)
	if err != nil {
		return models.NetworkGraph{}, err
	}
	if len(edges) == 0 {
		return models.NetworkGraph{Nodes: []models.GraphNode{}, Edges: []models.GraphEdge{}}, nil
	}

	degrees := make(map[string]int)
	graphEdges := make([]models.GraphEdge, len(edges))
	for i, e := range edges {
		degrees[e.FollowerID]++
		degrees[e.FolloweeID]++
		graphEdges[i] = models.GraphEdge{Source: e.FollowerID, Target: e.FolloweeID}
	}

	maxDegree := 0
	ids := make([]string, 0, len(degrees))
	for id, d := range degrees {
		ids = append(ids, id)
		if d > maxDegree {
			maxDegree = d
		}
	}
	sort.Strings(ids)

	names, err := a.db.DisplayNamesByID(ctx, ids)
	if err != nil {
		return models.NetworkGraph{}, err
	}

	nodes := make([]models.GraphNode, len(ids))
	for i, id := range ids {
		name, ok := names[id]
		if !ok {
			name = "User " + models.ShortID(id)
		}
		nodes[i] = models.GraphNode{
			ID:             id,
			DisplayName:    name,
			Degree:         degrees[id],
			InfluenceGroup: influenceGroup(degrees[id], maxDegree),
		}
	}

	return models.NetworkGraph{Nodes: nodes, Edges: graphEdges}, nil
}

// influenceGroup assigns the 0-4 band for a degree relative to the max
// observed degree.
func influenceGroup(degree, maxDegree int) int {
	if maxDegree == 0 {
		return 0
	}
	share := float64(degree) / float64(maxDegree)
	switch {
	case share > 0.8:
		return 4
	case share > 0.6:
		return 3
	case share > 0.4:
		return 2
	case share > 0.2:
		return 1
	default:
		return 0
	}
}

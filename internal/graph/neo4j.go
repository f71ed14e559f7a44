package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Neo4jRenderer stores acquisition graphs in Neo4j so that Bloom, the
// browser or any Cypher client can lay them out.
type Neo4jRenderer struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewNeo4jRenderer creates a driver for uri. Connectivity is not checked;
// call Ping for that.
func NewNeo4jRenderer(uri, user, password string, logger *zap.Logger) (*Neo4jRenderer, error) {
	auth := neo4j.NoAuth()
	if user != "" {
		auth = neo4j.BasicAuth(user, password, "")
	}
	driver, err := neo4j.NewDriverWithContext(uri, auth)
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	return &Neo4jRenderer{driver: driver, logger: logger}, nil
}

// Ping verifies the Neo4j connection.
func (r *Neo4jRenderer) Ping(ctx context.Context) error {
	return r.driver.VerifyConnectivity(ctx)
}

// Close shuts down the Neo4j driver.
func (r *Neo4jRenderer) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}

// Render merges the root and sub-process nodes and links them with
// DECOMPOSES_INTO relationships scoped by category.
func (r *Neo4jRenderer) Render(ctx context.Context, g *Graph, title string) error {
	renderID := uuid.New().String()

	leaves := make([]map[string]interface{}, 0, len(g.Nodes)-1)
	for _, n := range g.Nodes[1:] {
		leaves = append(leaves, map[string]interface{}{"label": n.Label, "size": n.Size})
	}

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	result, err := session.Run(ctx,
		`MERGE (root:Acquisition {label: $root})
		 ON CREATE SET root.concept = $concept, root.size = $rootSize
		 WITH root
		 UNWIND $leaves AS leaf
		 MERGE (p:SubProcess {label: leaf.label})
		 ON CREATE SET p.size = leaf.size
		 MERGE (root)-[rel:DECOMPOSES_INTO {category: $category}]->(p)
		 SET rel.render_id = $renderId, rel.title = $title, rel.rendered_at = datetime()`,
		map[string]interface{}{
			"root":     g.Root,
			"concept":  string(g.Concept),
			"rootSize": g.Nodes[0].Size,
			"leaves":   leaves,
			"category": string(g.Category),
			"renderId": renderID,
			"title":    title,
		})
	if err != nil {
		return fmt.Errorf("neo4j render %s: %w", g.Root, err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return fmt.Errorf("neo4j render %s: %w", g.Root, err)
	}

	r.logger.Debug("stored concept map",
		zap.String("render_id", renderID),
		zap.String("root", g.Root),
		zap.String("category", string(g.Category)))
	return nil
}

// Leaves reads back the sub-process labels linked to root under category,
// ordered by label.
func (r *Neo4jRenderer) Leaves(ctx context.Context, root, category string) ([]string, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx,
		`MATCH (:Acquisition {label: $root})-[:DECOMPOSES_INTO {category: $category}]->(p:SubProcess)
		 RETURN p.label AS label ORDER BY label`,
		map[string]interface{}{"root": root, "category": category})
	if err != nil {
		return nil, err
	}

	var labels []string
	for result.Next(ctx) {
		label, _ := result.Record().Get("label")
		if s, ok := label.(string); ok {
			labels = append(labels, s)
		}
	}
	return labels, result.Err()
}

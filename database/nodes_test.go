package database

import (
	"context"
	"testing"
	"time"

	"github.com/siherrmann/linker/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodesNewNodesDBHandler(t *testing.T) {
	database := initDB(t)

	t.Run("Valid call NewNodesDBHandler", func(t *testing.T) {
		nodesDbHandler, err := NewNodesDBHandler(database, true)
		assert.NoError(t, err, "Expected NewNodesDBHandler to not return an error")
		require.NotNil(t, nodesDbHandler, "Expected NewNodesDBHandler to return a non-nil instance")
		require.NotNil(t, nodesDbHandler.db, "Expected NewNodesDBHandler to have a non-nil database instance")
		require.NotNil(t, nodesDbHandler.db.Instance, "Expected NewNodesDBHandler to have a non-nil database connection instance")
	})

	t.Run("Invalid call NewNodesDBHandler with nil database", func(t *testing.T) {
		_, err := NewNodesDBHandler(nil, false)
		assert.Error(t, err, "Expected error when creating NodesDBHandler with nil database")
		assert.Contains(t, err.Error(), "database connection is nil", "Expected specific error message for nil database connection")
	})
}

func TestNodesInsert(t *testing.T) {
	database := initDB(t)

	nodesDbHandler, err := NewNodesDBHandler(database, true)
	require.NoError(t, err, "Expected NewNodesDBHandler to not return an error")

	t.Run("Insert node", func(t *testing.T) {
		node := &model.GraphNode{
			Label:    model.LabelOrganization,
			Name:     "CoCreateAI",
			Aliases:  []string{"CoCreate", "Co-Create AI"},
			Context:  "AI startup building co-creation tooling",
			Metadata: model.Metadata{"source": "crm"},
		}

		err := nodesDbHandler.InsertNode(node)
		assert.NoError(t, err, "Expected Insert to not return an error")
		assert.NotEmpty(t, node.ID, "Expected inserted node to have an ID")
		assert.NotEmpty(t, node.RID, "Expected inserted node to have a RID")
		assert.Equal(t, []string{"CoCreate", "Co-Create AI"}, node.Aliases, "Expected aliases to round-trip")
		assert.WithinDuration(t, node.CreatedAt, time.Now(), 2*time.Second, "Expected CreatedAt to be set")

		// Cleanup
		nodesDbHandler.DeleteNode(node.RID)
	})

	t.Run("Insert duplicate node (upsert)", func(t *testing.T) {
		node := &model.GraphNode{
			Label:   model.LabelTool,
			Name:    "Notion",
			Context: "Workspace tool",
		}

		err := nodesDbHandler.InsertNode(node)
		require.NoError(t, err)
		firstRID := node.RID

		// Insert again with same label and name but different context
		node2 := &model.GraphNode{
			Label:   model.LabelTool,
			Name:    "Notion",
			Context: "Docs and wiki tool",
		}

		err = nodesDbHandler.InsertNode(node2)
		assert.NoError(t, err, "Expected Insert to not return an error for duplicate")
		assert.Equal(t, firstRID, node2.RID, "Expected the upsert to keep the existing row")
		assert.Equal(t, "Docs and wiki tool", node2.Context, "Expected the upsert to update the context")

		// Cleanup
		nodesDbHandler.DeleteNode(firstRID)
	})

	t.Run("Insert node with nil aliases", func(t *testing.T) {
		node := &model.GraphNode{
			Label: model.LabelConcept,
			Name:  "Entity Resolution",
		}

		err := nodesDbHandler.InsertNode(node)
		assert.NoError(t, err)
		assert.NotNil(t, node.Aliases, "Expected nil aliases to come back as an empty array")

		// Cleanup
		nodesDbHandler.DeleteNode(node.RID)
	})
}

func TestNodesGet(t *testing.T) {
	database := initDB(t)

	nodesDbHandler, err := NewNodesDBHandler(database, true)
	require.NoError(t, err)

	node := &model.GraphNode{
		Label:         model.LabelOrganization,
		Name:          "Montreal Ventures",
		CanonicalName: "Montreal Ventures",
		Aliases:       []string{"MV"},
	}
	require.NoError(t, nodesDbHandler.InsertNode(node))
	defer nodesDbHandler.DeleteNode(node.RID)

	t.Run("Select node by RID", func(t *testing.T) {
		selected, err := nodesDbHandler.SelectNode(node.RID)
		assert.NoError(t, err, "Expected SelectNode to not return an error")
		require.NotNil(t, selected)
		assert.Equal(t, node.ID, selected.ID)
		assert.Equal(t, "Montreal Ventures", selected.Name)
		assert.Equal(t, []string{"MV"}, selected.Aliases)
	})

	t.Run("Select node by name and label", func(t *testing.T) {
		selected, err := nodesDbHandler.SelectNodeByName("Montreal Ventures", model.LabelOrganization)
		assert.NoError(t, err)
		require.NotNil(t, selected)
		assert.Equal(t, node.RID, selected.RID)
	})

	t.Run("Select nonexistent node returns an error", func(t *testing.T) {
		otherNode := &model.GraphNode{Label: model.LabelTool, Name: "temp"}
		require.NoError(t, nodesDbHandler.InsertNode(otherNode))
		require.NoError(t, nodesDbHandler.DeleteNode(otherNode.RID))

		_, err := nodesDbHandler.SelectNode(otherNode.RID)
		assert.Error(t, err, "Expected an error for a deleted node")
	})
}

func TestNodesSelectByLabels(t *testing.T) {
	database := initDB(t)

	nodesDbHandler, err := NewNodesDBHandler(database, true)
	require.NoError(t, err)

	inserted := []*model.GraphNode{
		{Label: model.LabelOrganization, Name: "Org A"},
		{Label: model.LabelOrganization, Name: "Org B"},
		{Label: model.LabelTool, Name: "Tool A"},
		{Label: model.LabelLocation, Name: "Berlin"},
	}
	for _, node := range inserted {
		require.NoError(t, nodesDbHandler.InsertNode(node))
	}
	defer func() {
		for _, node := range inserted {
			nodesDbHandler.DeleteNode(node.RID)
		}
	}()

	ctx := context.Background()

	t.Run("Select nodes filtered by labels", func(t *testing.T) {
		nodes, err := nodesDbHandler.SelectNodesByLabels(ctx, []model.NodeLabel{model.LabelOrganization, model.LabelTool}, 1000)
		assert.NoError(t, err)
		require.Len(t, nodes, 3, "Expected the location node to be filtered out")

		names := []string{}
		for _, node := range nodes {
			names = append(names, node.Name)
		}
		assert.Equal(t, []string{"Org A", "Org B", "Tool A"}, names, "Expected nodes ordered by insertion")
	})

	t.Run("Empty label list selects everything", func(t *testing.T) {
		nodes, err := nodesDbHandler.SelectNodesByLabels(ctx, nil, 1000)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(nodes), 4)
	})

	t.Run("Limit bounds the selection", func(t *testing.T) {
		nodes, err := nodesDbHandler.SelectNodesByLabels(ctx, []model.NodeLabel{model.LabelOrganization}, 1)
		assert.NoError(t, err)
		assert.Len(t, nodes, 1)
	})
}

func TestNodesUpdate(t *testing.T) {
	database := initDB(t)

	nodesDbHandler, err := NewNodesDBHandler(database, true)
	require.NoError(t, err)

	node := &model.GraphNode{
		Label:   model.LabelOrganization,
		Name:    "Acme Robotics",
		Aliases: []string{"Acme"},
	}
	require.NoError(t, nodesDbHandler.InsertNode(node))
	defer nodesDbHandler.DeleteNode(node.RID)

	t.Run("Add alias", func(t *testing.T) {
		updated, err := nodesDbHandler.AddNodeAlias(node.RID, "Acme Corp")
		assert.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, []string{"Acme", "Acme Corp"}, updated.Aliases)
	})

	t.Run("Add duplicate alias is a no-op", func(t *testing.T) {
		updated, err := nodesDbHandler.AddNodeAlias(node.RID, "Acme Corp")
		assert.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, []string{"Acme", "Acme Corp"}, updated.Aliases, "Expected the alias to be added only once")
	})

	t.Run("Update context", func(t *testing.T) {
		updated, err := nodesDbHandler.UpdateNodeContext(node.RID, "Industrial robotics manufacturer")
		assert.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Industrial robotics manufacturer", updated.Context)
	})
}

package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/siherrmann/linker/helper"
	"github.com/siherrmann/linker/model"
	"github.com/siherrmann/linker/sql"
)

// NodesDBHandlerFunctions defines the interface for Nodes database operations.
type NodesDBHandlerFunctions interface {
	InsertNode(node *model.GraphNode) error
	SelectNode(rid uuid.UUID) (*model.GraphNode, error)
	SelectNodeByName(name string, label model.NodeLabel) (*model.GraphNode, error)
	SelectNodesByLabels(ctx context.Context, labels []model.NodeLabel, limit int) ([]*model.GraphNode, error)
	AddNodeAlias(rid uuid.UUID, alias string) (*model.GraphNode, error)
	UpdateNodeContext(rid uuid.UUID, context string) (*model.GraphNode, error)
	DeleteNode(rid uuid.UUID) error
}

// NodesDBHandler handles node-related database operations
type NodesDBHandler struct {
	db *helper.Database
}

// NewNodesDBHandler creates a new nodes database handler.
// It initializes the database connection and loads node-related SQL functions.
// If force is true, it will reload the SQL functions even if they already exist.
func NewNodesDBHandler(db *helper.Database, force bool) (*NodesDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	nodesDbHandler := &NodesDBHandler{
		db: db,
	}

	err := sql.LoadNodesSql(nodesDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load nodes sql", err)
	}

	err = nodesDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized NodesDBHandler")

	return nodesDbHandler, nil
}

// CreateTable creates the 'nodes' table in the database.
// If the table already exists, it does not create it again.
// It also creates all necessary indexes.
func (h *NodesDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_nodes();`)
	if err != nil {
		log.Panicf("error initializing nodes table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table nodes")

	return nil
}

// InsertNode inserts a new node (or updates the node with the same label and name)
func (h *NodesDBHandler) InsertNode(node *model.GraphNode) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_node($1, $2, $3, $4, $5, $6)`,
		string(node.Label),
		node.Name,
		node.CanonicalName,
		pq.Array(node.Aliases),
		node.Context,
		node.Metadata,
	)

	err := scanNode(row, node)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectNode retrieves a node by RID
func (h *NodesDBHandler) SelectNode(rid uuid.UUID) (*model.GraphNode, error) {
	node := &model.GraphNode{}
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_node($1)`,
		rid,
	)

	err := scanNode(row, node)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return node, nil
}

// SelectNodeByName retrieves a node by name and label
func (h *NodesDBHandler) SelectNodeByName(name string, label model.NodeLabel) (*model.GraphNode, error) {
	node := &model.GraphNode{}
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_node_by_name($1, $2)`,
		name,
		string(label),
	)

	err := scanNode(row, node)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return node, nil
}

// SelectNodesByLabels retrieves nodes filtered by label allow-list, bounded
// by limit and ordered by insertion. This is the bulk load behind the match
// cache, so it takes a context.
func (h *NodesDBHandler) SelectNodesByLabels(ctx context.Context, labels []model.NodeLabel, limit int) ([]*model.GraphNode, error) {
	labelStrings := make([]string, 0, len(labels))
	for _, label := range labels {
		labelStrings = append(labelStrings, string(label))
	}

	rows, err := h.db.Instance.QueryContext(
		ctx,
		`SELECT * FROM select_nodes_by_labels($1, $2)`,
		pq.Array(labelStrings),
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var nodes []*model.GraphNode
	for rows.Next() {
		node := &model.GraphNode{}
		err := scanNode(rows, node)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		nodes = append(nodes, node)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return nodes, nil
}

// AddNodeAlias appends an alias to a node unless it already carries it
func (h *NodesDBHandler) AddNodeAlias(rid uuid.UUID, alias string) (*model.GraphNode, error) {
	node := &model.GraphNode{}
	row := h.db.Instance.QueryRow(
		`SELECT * FROM add_node_alias($1, $2)`,
		rid,
		alias,
	)

	err := scanNode(row, node)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return node, nil
}

// UpdateNodeContext replaces the descriptive context of a node
func (h *NodesDBHandler) UpdateNodeContext(rid uuid.UUID, context string) (*model.GraphNode, error) {
	node := &model.GraphNode{}
	row := h.db.Instance.QueryRow(
		`SELECT * FROM update_node_context($1, $2)`,
		rid,
		context,
	)

	err := scanNode(row, node)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return node, nil
}

// DeleteNode deletes a node by RID
func (h *NodesDBHandler) DeleteNode(rid uuid.UUID) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_node($1)`,
		rid,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner, node *model.GraphNode) error {
	return row.Scan(
		&node.ID,
		&node.RID,
		&node.Label,
		&node.Name,
		&node.CanonicalName,
		pq.Array(&node.Aliases),
		&node.Context,
		&node.Metadata,
		&node.CreatedAt,
		&node.UpdatedAt,
	)
}

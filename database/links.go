package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/linker/helper"
	"github.com/siherrmann/linker/model"
	"github.com/siherrmann/linker/sql"
)

// LinksDBHandlerFunctions defines the interface for Links database operations.
type LinksDBHandlerFunctions interface {
	InsertLink(link *model.Link) error
	SelectLinksByNode(nodeRid uuid.UUID, limit int) ([]*model.Link, error)
	DeleteLink(rid uuid.UUID) error
}

// LinksDBHandler handles link-related database operations
type LinksDBHandler struct {
	db *helper.Database
}

// NewLinksDBHandler creates a new links database handler.
// It initializes the database connection and loads link-related SQL functions.
// If force is true, it will reload the SQL functions even if they already exist.
func NewLinksDBHandler(db *helper.Database, force bool) (*LinksDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	linksDbHandler := &LinksDBHandler{
		db: db,
	}

	err := sql.LoadLinksSql(linksDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load links sql", err)
	}

	err = linksDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized LinksDBHandler")

	return linksDbHandler, nil
}

// CreateTable creates the 'links' table in the database.
// The links table references nodes, so the nodes table must exist first.
func (h *LinksDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_links();`)
	if err != nil {
		log.Panicf("error initializing links table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table links")

	return nil
}

// InsertLink records an accepted resolution
func (h *LinksDBHandler) InsertLink(link *model.Link) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_link($1, $2, $3, $4, $5, $6)`,
		link.NodeRID,
		link.Term,
		link.Score,
		string(link.MatchType),
		link.Source,
		link.Metadata,
	)

	err := row.Scan(
		&link.ID,
		&link.RID,
		&link.NodeRID,
		&link.Term,
		&link.Score,
		&link.MatchType,
		&link.Source,
		&link.Metadata,
		&link.CreatedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectLinksByNode retrieves the most recent links pointing at a node
func (h *LinksDBHandler) SelectLinksByNode(nodeRid uuid.UUID, limit int) ([]*model.Link, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_links_by_node($1, $2)`,
		nodeRid,
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var links []*model.Link
	for rows.Next() {
		link := &model.Link{}
		err := rows.Scan(
			&link.ID,
			&link.RID,
			&link.NodeRID,
			&link.Term,
			&link.Score,
			&link.MatchType,
			&link.Source,
			&link.Metadata,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		links = append(links, link)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return links, nil
}

// DeleteLink deletes a link by RID
func (h *LinksDBHandler) DeleteLink(rid uuid.UUID) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_link($1)`,
		rid,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}

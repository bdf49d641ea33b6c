package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
)

//go:embed init.sql
var initSQL string

//go:embed nodes.sql
var nodesSQL string

//go:embed links.sql
var linksSQL string

// Function lists for verification
var NodesFunctions = []string{
	"init_nodes",
	"insert_node",
	"select_node",
	"select_node_by_name",
	"select_nodes_by_labels",
	"add_node_alias",
	"update_node_context",
	"delete_node",
}

var LinksFunctions = []string{
	"init_links",
	"insert_link",
	"select_links_by_node",
	"delete_link",
}

// Init intializes db extensions
func Init(db *sql.DB) error {
	_, err := db.Exec(initSQL)
	if err != nil {
		return fmt.Errorf("error executing schema SQL: %w", err)
	}

	log.Println("Database extensions initialized successfully")
	return nil
}

// LoadNodesSql loads node-related SQL functions
func LoadNodesSql(db *sql.DB, force bool) error {
	if !force {
		exist, err := checkFunctions(db, NodesFunctions)
		if err != nil {
			return fmt.Errorf("error checking existing nodes functions: %w", err)
		}
		if exist {
			return nil
		}
	}

	_, err := db.Exec(nodesSQL)
	if err != nil {
		return fmt.Errorf("error executing nodes SQL: %w", err)
	}

	exist, err := checkFunctions(db, NodesFunctions)
	if err != nil {
		return fmt.Errorf("error checking existing functions: %w", err)
	}
	if !exist {
		return fmt.Errorf("not all required SQL functions were created")
	}

	log.Println("SQL nodes functions loaded successfully")
	return nil
}

// LoadLinksSql loads link-related SQL functions
func LoadLinksSql(db *sql.DB, force bool) error {
	if !force {
		exist, err := checkFunctions(db, LinksFunctions)
		if err != nil {
			return fmt.Errorf("error checking existing links functions: %w", err)
		}
		if exist {
			return nil
		}
	}

	_, err := db.Exec(linksSQL)
	if err != nil {
		return fmt.Errorf("error executing links SQL: %w", err)
	}

	exist, err := checkFunctions(db, LinksFunctions)
	if err != nil {
		return fmt.Errorf("error checking existing functions: %w", err)
	}
	if !exist {
		return fmt.Errorf("not all required SQL functions were created")
	}

	log.Println("SQL links functions loaded successfully")
	return nil
}

// LoadAllSql loads all SQL functions
func LoadAllSql(db *sql.DB, force bool) error {
	if err := LoadNodesSql(db, force); err != nil {
		return err
	}

	if err := LoadLinksSql(db, force); err != nil {
		return err
	}

	return nil
}

// checkFunctions verifies that all required functions exist in the database
func checkFunctions(db *sql.DB, sqlFunctions []string) (bool, error) {
	var allExist bool
	for _, f := range sqlFunctions {
		err := db.QueryRow(
			`SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);`,
			f,
		).Scan(&allExist)
		if err != nil {
			return false, fmt.Errorf("error checking existence of function %s: %w", f, err)
		}
		if !allExist {
			log.Printf("Function %s does not exist", f)
			break
		}
	}
	return allExist, nil
}

package sql

import (
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	t.Run("Initialize database extensions", func(t *testing.T) {
		err := Init(db.Instance)
		assert.NoError(t, err)

		// Verify pgcrypto extension is created
		var exists bool
		err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_extension WHERE extname = 'pgcrypto');").Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "pgcrypto extension should be created")
	})

	t.Run("Initialize database extensions is idempotent", func(t *testing.T) {
		// Running Init multiple times should not error
		err := Init(db.Instance)
		assert.NoError(t, err)

		err = Init(db.Instance)
		assert.NoError(t, err)
	})
}

func TestLoadNodesSql(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	// Initialize extensions first
	err := Init(db.Instance)
	require.NoError(t, err)

	t.Run("Load nodes SQL functions", func(t *testing.T) {
		err := LoadNodesSql(db.Instance, false)
		assert.NoError(t, err)

		// Verify all functions exist
		for _, funcName := range NodesFunctions {
			var exists bool
			err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);", funcName).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists, "Function %s should exist", funcName)
		}
	})

	t.Run("Load nodes SQL is idempotent without force", func(t *testing.T) {
		// Loading again without force should be a no-op
		err := LoadNodesSql(db.Instance, false)
		assert.NoError(t, err)
	})

	t.Run("Load nodes SQL with force reloads", func(t *testing.T) {
		// Loading with force should reload
		err := LoadNodesSql(db.Instance, true)
		assert.NoError(t, err)

		// Verify functions still exist
		for _, funcName := range NodesFunctions {
			var exists bool
			err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);", funcName).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists, "Function %s should exist after force reload", funcName)
		}
	})
}

func TestLoadLinksSql(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	// Initialize extensions first
	err := Init(db.Instance)
	require.NoError(t, err)

	t.Run("Load links SQL functions", func(t *testing.T) {
		err := LoadLinksSql(db.Instance, false)
		assert.NoError(t, err)

		// Verify all functions exist
		for _, funcName := range LinksFunctions {
			var exists bool
			err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);", funcName).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists, "Function %s should exist", funcName)
		}
	})

	t.Run("Load links SQL is idempotent without force", func(t *testing.T) {
		err := LoadLinksSql(db.Instance, false)
		assert.NoError(t, err)
	})

	t.Run("Load links SQL with force reloads", func(t *testing.T) {
		err := LoadLinksSql(db.Instance, true)
		assert.NoError(t, err)
	})
}

func TestLoadAllSql(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	// Initialize extensions first
	err := Init(db.Instance)
	require.NoError(t, err)

	t.Run("Load all SQL functions", func(t *testing.T) {
		err := LoadAllSql(db.Instance, false)
		assert.NoError(t, err)

		// Verify all nodes functions exist
		for _, funcName := range NodesFunctions {
			var exists bool
			err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);", funcName).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists, "Nodes function %s should exist", funcName)
		}

		// Verify all links functions exist
		for _, funcName := range LinksFunctions {
			var exists bool
			err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);", funcName).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists, "Links function %s should exist", funcName)
		}
	})

	t.Run("Load all SQL is idempotent without force", func(t *testing.T) {
		err := LoadAllSql(db.Instance, false)
		assert.NoError(t, err)
	})

	t.Run("Load all SQL with force reloads", func(t *testing.T) {
		err := LoadAllSql(db.Instance, true)
		assert.NoError(t, err)
	})
}

func TestCheckFunctions(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	// Initialize extensions first
	err := Init(db.Instance)
	require.NoError(t, err)

	t.Run("Check functions returns false when functions don't exist", func(t *testing.T) {
		exists, err := checkFunctions(db.Instance, []string{"nonexistent_function"})
		assert.NoError(t, err)
		assert.False(t, exists, "Should return false for nonexistent function")
	})

	t.Run("Check functions returns true when all functions exist", func(t *testing.T) {
		// Load nodes SQL first
		err := LoadNodesSql(db.Instance, false)
		require.NoError(t, err)

		exists, err := checkFunctions(db.Instance, NodesFunctions)
		assert.NoError(t, err)
		assert.True(t, exists, "Should return true when all functions exist")
	})

	t.Run("Check functions returns false when some functions don't exist", func(t *testing.T) {
		// Mix of existing and non-existing functions
		mixedFunctions := append([]string{"init_nodes"}, "nonexistent_function")
		exists, err := checkFunctions(db.Instance, mixedFunctions)
		assert.NoError(t, err)
		assert.False(t, exists, "Should return false when some functions don't exist")
	})

	t.Run("Check functions with empty list", func(t *testing.T) {
		exists, err := checkFunctions(db.Instance, []string{})
		assert.NoError(t, err)
		// With an empty list, the loop doesn't execute and allExist remains false
		assert.False(t, exists, "Should return false for empty function list")
	})
}

func TestFunctionLists(t *testing.T) {
	t.Run("NodesFunctions list is not empty", func(t *testing.T) {
		assert.NotEmpty(t, NodesFunctions, "NodesFunctions should not be empty")
		assert.Greater(t, len(NodesFunctions), 5, "Should have multiple node functions")
	})

	t.Run("LinksFunctions list is not empty", func(t *testing.T) {
		assert.NotEmpty(t, LinksFunctions, "LinksFunctions should not be empty")
		assert.Greater(t, len(LinksFunctions), 3, "Should have multiple link functions")
	})
}

func TestEmbeddedSQL(t *testing.T) {
	t.Run("Init SQL is embedded", func(t *testing.T) {
		assert.NotEmpty(t, initSQL, "initSQL should be embedded")
		assert.Contains(t, initSQL, "CREATE EXTENSION", "Should contain CREATE EXTENSION")
	})

	t.Run("Nodes SQL is embedded", func(t *testing.T) {
		assert.NotEmpty(t, nodesSQL, "nodesSQL should be embedded")
		assert.Contains(t, nodesSQL, "CREATE", "Should contain CREATE statements")
	})

	t.Run("Links SQL is embedded", func(t *testing.T) {
		assert.NotEmpty(t, linksSQL, "linksSQL should be embedded")
		assert.Contains(t, linksSQL, "CREATE", "Should contain CREATE statements")
	})
}

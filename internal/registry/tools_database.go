package registry

type DbListConnectionsArgs struct{}

type DbQueryArgs struct {
	Connection string `json:"connection" jsonschema:"description=Named connection to query."`
	SQL        string `json:"sql" jsonschema:"description=SQL statement to execute."`
	MaxRows    int    `json:"max_rows,omitempty" jsonschema:"description=Cap on rows returned."`
}

type DbExecuteArgs struct {
	Connection string `json:"connection" jsonschema:"description=Named connection to execute against."`
	SQL        string `json:"sql" jsonschema:"description=DDL/DML statement to execute."`
}

type DbListTablesArgs struct {
	Connection string `json:"connection" jsonschema:"description=Named connection to inspect."`
	Schema     string `json:"schema,omitempty" jsonschema:"description=Restrict to a single schema/namespace."`
}

type DbDescribeTableArgs struct {
	Connection string `json:"connection" jsonschema:"description=Named connection to inspect."`
	Table      string `json:"table" jsonschema:"description=Table name, optionally schema-qualified."`
}

type DbBeginTransactionArgs struct {
	Connection string `json:"connection" jsonschema:"description=Named connection to start a transaction on."`
}

type DbCommitTransactionArgs struct {
	TransactionID string `json:"transaction_id" jsonschema:"description=Handle returned by db_begin_transaction."`
}

func databaseTools() []ToolMetadata {
	const cat = "database"
	return []ToolMetadata{
		tool("db_list_connections", cat, "List configured database connections.", schemaFor[DbListConnectionsArgs](), readOnly),
		tool("db_query", cat, "Run a read query and return rows.", schemaFor[DbQueryArgs](), readOnly),
		tool("db_execute", cat, "Execute a statement that mutates data or schema.", schemaFor[DbExecuteArgs]()),
		tool("db_list_tables", cat, "List tables visible on a connection.", schemaFor[DbListTablesArgs](), readOnly),
		tool("db_describe_table", cat, "Describe a table's columns, types, and keys.", schemaFor[DbDescribeTableArgs](), readOnly),
		tool("db_begin_transaction", cat, "Start a transaction and return a handle for subsequent statements.", schemaFor[DbBeginTransactionArgs]()),
		tool("db_commit_transaction", cat, "Commit a previously started transaction.", schemaFor[DbCommitTransactionArgs]()),
	}
}

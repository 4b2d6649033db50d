// Package dialect holds the built-in SQL dialect tables and a registry to look them up
// by name.
//
// A Dialect is plain data: a lexer.Config listing reserved commands, joins, keywords,
// function names, quoting rules and operators. Multi-word phrases are written as
// phrase templates and expanded once at package initialization. Each registered
// dialect carries a compiled tokenizer that is safe for concurrent use.
//
// Built-in dialects:
//
//	sql         Standard SQL (aliases: standard, ansi)
//	clickhouse  ClickHouse
//	mariadb     MariaDB and MySQL (alias: mysql)
//	postgresql  PostgreSQL (aliases: postgres, pg)
//	redshift    Amazon Redshift
//	sqlite      SQLite
//
// Usage:
//
//	d, err := dialect.Get("postgres")
//	if err != nil {
//		return err
//	}
//
//	tokens, err := d.Tokenizer().Tokenize(sql)
//
// Additional dialects can be registered from an init function with Register.
package dialect

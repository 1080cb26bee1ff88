package ddl

import "github.com/hatlonely/sqltable/model"

func ptr[T any](v T) *T {
	return &v
}

func mysqlUsersObject() *model.TableObject {
	return &model.TableObject{
		Name:           "users",
		Engine:         "InnoDB",
		DefaultCharset: "utf8mb4",
		Comment:        ptr("user table"),
		AutoIncrement:  ptr(true),
		Columns: []model.ColumnObject{
			{Name: "id", Type: "BIGINT", Unsigned: true, NotNull: true, AutoIncrement: true},
			{Name: "name", Type: "VARCHAR", Size: 64, NotNull: true, Comment: "user name"},
			{Name: "status", Type: "VARCHAR", Size: 16, Default: "active"},
			{Name: "enabled", Type: "TINYINT", Size: 1, Default: true},
			{Name: "created_at", Type: "TIMESTAMP", NotNull: true, Default: "CURRENT_TIMESTAMP", OnUpdate: "CURRENT_TIMESTAMP"},
		},
		Indexes: []model.IndexObject{
			{Name: "PRIMARY", Type: model.IndexTypePrimary, Columns: []string{"id"}},
			{Name: "uk_name", Type: model.IndexTypeUnique, Columns: []string{"name"}},
			{Name: "idx_status", Type: model.IndexTypeKey, Columns: []string{"status"}, Comment: "status index"},
		},
	}
}

func sqliteUsersObject() *model.TableObject {
	return &model.TableObject{
		Name:    "users",
		Engine:  "InnoDB",
		Comment: ptr("ignored"),
		Columns: []model.ColumnObject{
			{Name: "id", Type: "INTEGER", NotNull: true, AutoIncrement: true},
			{Name: "name", Type: "TEXT", NotNull: true},
			{Name: "status", Type: "TEXT", Default: "active"},
			{Name: "enabled", Type: "INTEGER", Default: true},
		},
		Indexes: []model.IndexObject{
			{Name: "PRIMARY", Type: model.IndexTypePrimary, Columns: []string{"id"}},
			{Name: "uk_name", Type: model.IndexTypeUnique, Columns: []string{"name"}},
			{Name: "idx_status", Type: model.IndexTypeKey, Columns: []string{"status"}},
		},
	}
}

func postgresUsersObject() *model.TableObject {
	return &model.TableObject{
		Name:    "public.users",
		Comment: ptr("user table"),
		Columns: []model.ColumnObject{
			{Name: "id", Type: "BIGINT", NotNull: true, AutoIncrement: true},
			{Name: "name", Type: "VARCHAR", Size: 64, NotNull: true, Comment: "user name"},
			{Name: "enabled", Type: "BOOLEAN", Default: true},
			{Name: "created_at", Type: "TIMESTAMPTZ", NotNull: true, Default: "CURRENT_TIMESTAMP"},
		},
		Indexes: []model.IndexObject{
			{Name: "PRIMARY", Type: model.IndexTypePrimary, Columns: []string{"id"}},
			{Name: "uk_name", Type: model.IndexTypeUnique, Columns: []string{"name"}},
			{Name: "idx_created_at", Type: model.IndexTypeKey, Columns: []string{"created_at"}, Comment: "by time"},
		},
	}
}

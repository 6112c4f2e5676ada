/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package dynamodel lets application code treat DynamoDB tables as Eloquent
style model objects: Find, All, First, Where, Save, Update, Create, Delete.

A model is described by a Definition (table, identity fields, index keys,
fillable allowlist) and backed by one shared store client:

	users := &dynamodel.Definition{
		Name:       "User",
		Table:      "users",
		PrimaryKey: "id",
		Indexes:    []dynamodel.IndexKey{{Field: "email", Index: "email-index"}},
		Fillable:   []string{"id", "name", "email"},
	}

	client, _ := ddb.NewWithCredentials(ctx, accessKey, secretKey, region, logger)
	m := dynamodel.New(users, client)

	user := m.Create(ctx, map[string]any{"id": "a1", "name": "x"})
	found, _ := m.Find(ctx, "a1")
	active, _ := m.Where("email", "begins_with", "x@").All(ctx)

Filters are conjunctive only. When a filter targets a declared index key
with a key-eligible operator the read runs as a Query on that index;
otherwise it runs as a Scan with post-filtering. Save reports failure as a
boolean and logs the cause; reads and deletes return errors.
*/
package dynamodel

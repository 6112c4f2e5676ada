/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package registry holds model definitions by name.

Definitions are registered once at startup, either in code:

	registry.Register(&dynamodel.Definition{
		Name:       "User",
		Table:      "users",
		PrimaryKey: "id",
	})

or from a YAML manifest:

	registry.RegisterManifest("models.yaml")

The registry is safe for concurrent reads after startup.
*/
package registry

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration.

Configuration comes from CLI flags with environment variable
fallbacks; a .env file in the working directory is loaded first via
godotenv and loses to both.

# Settings

  - PORT (-p): server port (default 8000)
  - DATA_DIR (-data): poll data directory (default ./data)
  - USERS_DB (-users-db): user registry path (default <data>/users.db)
  - TOKEN_TTL_MIN (-token-ttl): access token lifetime (default 60)
  - ADMIN_USER (-admin-user): bootstrap admin username (default admin)
  - ADMIN_PASSWORD (-admin-pass): bootstrap admin password
  - JWT_SECRET (-jwt-secret): token signing secret, required

ParseFlags returns an error when the JWT secret is missing; everything
else has a usable default.
*/
package cliparse

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire module.

It defines asset layout, localization keys and settings blob keys that are
shared between different layers of the browser.

Categories:

  - Metadata: Application name and version.
  - Assets: File names and directories inside an asset source.
  - Localization: Keys used by the aggregate statistics line.
  - Settings: Keys of the persisted settings blob and the bootstrap query.

Using this package ensures Magic Strings are eliminated from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "mhinfo"
	AppVersion = "0.1.0-dev"
)

// # Assets

const (
	// DataDir is the directory holding one dataset file per game.
	DataDir = "data"

	// DatasetExt is the extension appended to the game file name part.
	DatasetExt = ".json"

	// LocalizationFile is the flat key/value translation table.
	LocalizationFile = "localization.json"

	// DefaultFetchTimeout bounds a single asset fetch.
	DefaultFetchTimeout = 10 * time.Second
)

// # Localization Keys

const (
	KeyNoMonster  = "NO_MONSTER"
	KeyOneMonster = "ONE_MONSTER"
	KeyNMonsters  = "N_MONSTERS"
)

// # Settings Blob

const (
	SettingsKeyGame       = "game"
	SettingsKeyLanguage   = "lang"
	SettingsKeyFilterMode = "filterMode"
	SettingsKeyTypes      = "types"

	// SettingsPairSeparator separates key:value pairs in the blob.
	SettingsPairSeparator = "|"
	// SettingsKeyValueSeparator separates a key from its value.
	SettingsKeyValueSeparator = ":"
	// SettingsListSeparator joins the selected type tags before escaping.
	SettingsListSeparator = ";"

	// SettingsFileName is the blob file inside the user configuration directory.
	SettingsFileName = "settings"
)

// # Bootstrap Query

const (
	QueryKeyLanguage   = "lang"
	QueryKeyGame       = "game"
	QueryKeyFilter     = "filter"
	QueryKeyFilterMode = "fmode"
)

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command mhinfo browses monster attack and weakness data per game.
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Initialize structured logger.
//  3. Load the game/language catalog and restore persisted settings.
//  4. Apply the bootstrap query and flags.
//  5. Load localization and the selected game's dataset.
//  6. Run the requested command.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import "github.com/taibuivan/mhinfo/cmd/mhinfo/root"

func main() {
	root.Execute()
}

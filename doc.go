// Package cookiecost computes what a batch of cookies costs to bake, and keeps
// the calculations on the local disk.
//
// The core functionalities are:
//   - Calculations: a batch size and a list of ingredients, each with a
//     quantity and a price per unit (see [Calculation]).
//   - Cost: the cost of the batch divided by the number of cookies
//     (see [CostPerUnit] and [Breakdown]). Numbers are exact decimals.
//   - Local store: named calculations saved as one JSON array in a key-value
//     backend (see [Store], [FileBackend]). Save is an upsert by ID.
//   - Import/Export: the whole collection as a single JSON file, replaced
//     all at once on import (see [Store.Import]).
//   - Sharing: a single calculation encoded in a link, no server involved
//     (see [EncodeShare], [DecodeShare], [ShareLink]).
//   - Session: the calculation being edited and the commands that change it
//     (see [Session]).
//
// The storage and share formats are those of the Dela Casa web calculator,
// so files and links move freely between both tools.
//
// This package serves as the foundational logic for the `ccc` command-line tool.
package cookiecost

// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Command dmcheck inspects the dmath build mode and evaluates elementary
// operations from the command line.
//
// Usage:
//
//	dmcheck info
//	dmcheck eval divide 1 0
//	dmcheck eval --name Pipe.flow sqrt -- -2
//	dmcheck nan 1 NaN 3
//	dmcheck sample --time 2 --event --period 1
//
// Build with -tags domaincheck to see diagnostics from eval.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Copyright 2025 Poiesic Systems
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


// Package batch translates many requests concurrently.
//
// A Runner fans inputs out to a bounded ants worker pool, keeps results in
// input order and reports progress to a writer as work completes:
//
//	runner, err := batch.NewRunner(translate.NewTranslator(), batch.DefaultConfig(), os.Stderr)
//	if err != nil {
//	    return err
//	}
//	results, err := runner.Run(ctx, inputs)
//
// ReadInputs and WriteResults handle the line-oriented file format used by
// the CLI: one request per line in, "request<TAB>query" lines out.
package batch

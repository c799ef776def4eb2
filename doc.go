// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package skc implements the Supplemental Kernel Commandline format: a
// compact, tree-structured key/value text format parsed in a single pass
// into a fixed-capacity node arena, with query and iteration support over
// the resulting tree.
//
// A minimal document looks like:
//
//	log.buflen = 64;
//	kernel {
//	    printk.devkmsg = "on";
//	    cpuset = "0-7", "8-15";
//	}
//
// Parsing is one-shot: a [Tree] is filled exactly once by [Tree.Parse] and is
// read-only afterward. Concurrent reads of a parsed Tree are safe; Parse
// itself is not safe to call concurrently with anything.
package skc

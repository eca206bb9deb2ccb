// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package block provides terminal items for a [columnar.Layout]: text blocks
// whose height depends on the width they are given, and fixed-size boxes.
package block

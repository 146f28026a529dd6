// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package product

import "github.com/vk/prodcat/internal/validator"

// validate is shared by every constructor in this package.
var validate = validator.New().Struct

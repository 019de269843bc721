package main

import (
	"flag"
	"fmt"

	"github.com/MatevzKlancar/phyacc/internal/config"
	"github.com/MatevzKlancar/phyacc/internal/database"
	"github.com/MatevzKlancar/phyacc/internal/logger"
	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/gagliardetto/solana-go"
)

// 运维工具：批量生成平台托管钱包并写入钱包池。
// 私钥只在终端打印一次，不入库，需要立即离线保存。
func main() {
	count := flag.Int("count", 5, "生成的钱包数量")
	flag.Parse()

	if *count < 1 {
		logger.Fatal("count must be at least 1")
	}

	cfg := config.Load()

	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	type generated struct {
		publicKey  string
		privateKey string
	}

	wallets := make([]generated, 0, *count)
	publicKeys := make([]string, 0, *count)
	for i := 0; i < *count; i++ {
		wallet := solana.NewWallet()
		wallets = append(wallets, generated{
			publicKey:  wallet.PublicKey().String(),
			privateKey: wallet.PrivateKey.String(),
		})
		publicKeys = append(publicKeys, wallet.PublicKey().String())
	}

	walletRepo := repository.NewWalletRepository(db)
	if _, err := walletRepo.CreateBatch(publicKeys); err != nil {
		logger.Fatal("Failed to store wallets: %v", err)
	}

	fmt.Printf("Generated %d platform wallets\n", *count)
	fmt.Println("\nIMPORTANT: Save these private keys securely offline!")
	for i, w := range wallets {
		fmt.Printf("\nWallet %d:\n", i+1)
		fmt.Printf("Public Key: %s\n", w.publicKey)
		fmt.Printf("Private Key: %s\n", w.privateKey)
		fmt.Println("-------------------")
	}
}
